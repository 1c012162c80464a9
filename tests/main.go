// Seed binary: loads demo users, bookings, cases and events for local
// development. Run with `go run ./tests` against a disposable database.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"lawyerup/config"
	"lawyerup/database"
	"lawyerup/models"
	"lawyerup/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "demo1234"

// seedSession issues a 30 day bearer token, stores its hash on the user
// record and prints the token for manual API calls.
func seedSession(u *models.User) {
	token, err := utils.GenerateToken(u.ID, u.UserType, 30*24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to issue demo token for %s: %v", u.Email, err)
	}
	u.TokenHash = utils.HashToken(token)
	log.Printf("  %-40s %s", u.Email, token)
}

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clear existing demo data.
	for _, coll := range []string{"users", "bookings", "events", "cases", "notifications", "network_messages"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	now := time.Now().UTC()

	lawyers := []models.User{
		{
			ID:            uuid.New().String(),
			Email:         "adaeze.okafor@lawyerup.demo",
			FullName:      "Adaeze Okafor",
			UserType:      models.RoleLawyer,
			State:         "Lagos",
			City:          "Ikeja",
			OfficeAddress: "12 Allen Avenue, Ikeja",
			PasswordHash:  string(hash),
			CreatedAt:     now,
		},
		{
			ID:           uuid.New().String(),
			Email:        "tunde.balogun@lawyerup.demo",
			FullName:     "Tunde Balogun",
			UserType:     models.RoleFirmLawyer,
			State:        "Abuja",
			City:         "Wuse",
			PasswordHash: string(hash),
			CreatedAt:    now,
		},
	}

	clients := []models.User{
		{
			ID:           uuid.New().String(),
			Email:        "chidi.eze@lawyerup.demo",
			FullName:     "Chidi Eze",
			UserType:     models.RoleClient,
			PasswordHash: string(hash),
			CreatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			Email:        "amina.bello@lawyerup.demo",
			FullName:     "Amina Bello",
			UserType:     models.RoleClient,
			PasswordHash: string(hash),
			CreatedAt:    now,
		},
	}

	// Issue a long-lived bearer token per user and persist its session hash
	// so the seeded accounts can call the API directly.
	var userDocs []interface{}
	for i := range lawyers {
		seedSession(&lawyers[i])
		userDocs = append(userDocs, lawyers[i])
	}
	for i := range clients {
		seedSession(&clients[i])
		userDocs = append(userDocs, clients[i])
	}
	if _, err := db.Collection("users").InsertMany(ctx, userDocs); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	// Bookings spread across the coming week, alternating types and statuses.
	types := []string{models.ConsultationVideo, models.ConsultationAudio, models.ConsultationInPerson}
	statuses := []string{models.BookingPending, models.BookingConfirmed}
	var bookingDocs []interface{}
	for i := 0; i < 8; i++ {
		lawyer := lawyers[i%len(lawyers)]
		client := clients[i%len(clients)]
		day := now.AddDate(0, 0, 1+i%7).Format("2006-01-02")
		hour := 9 + i%6

		b := models.Booking{
			ID:               uuid.New().String(),
			ClientID:         client.ID,
			LawyerID:         lawyer.ID,
			Date:             day,
			Time:             fmt.Sprintf("%02d:00", hour),
			DurationMinutes:  30 * (1 + i%2),
			ConsultationType: types[i%len(types)],
			Description:      "Demo consultation",
			Price:            float64(500 * (1 + i%2)),
			Status:           statuses[i%len(statuses)],
			CreatedAt:        now,
		}
		if i < 2 {
			b.Price = 0
			b.IsFreeTrial = true
		}
		if b.ConsultationType == models.ConsultationVideo {
			b.MeetLink = fmt.Sprintf("https://meet.google.com/%s", uuid.New().String()[:11])
			b.Location = "Google Meet"
		}
		bookingDocs = append(bookingDocs, b)
	}
	if _, err := db.Collection("bookings").InsertMany(ctx, bookingDocs); err != nil {
		log.Fatalf("Failed to seed bookings: %v", err)
	}

	// Court calendar blocks for the lawyers.
	var eventDocs []interface{}
	for i, lawyer := range lawyers {
		start := now.AddDate(0, 0, 2+i).Truncate(time.Hour)
		eventDocs = append(eventDocs, models.Event{
			ID:          uuid.New().String(),
			LawyerID:    lawyer.ID,
			Title:       "High Court hearing",
			Type:        models.EventHearing,
			StartTime:   start,
			EndTime:     start.Add(2 * time.Hour),
			Description: "Demo hearing block",
			CreatedAt:   now,
		})
	}
	if _, err := db.Collection("events").InsertMany(ctx, eventDocs); err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}

	// A handful of cases per lawyer.
	caseTypes := []string{"Property", "Corporate", "Family", "Criminal"}
	var caseDocs []interface{}
	for i := 0; i < 6; i++ {
		lawyer := lawyers[i%len(lawyers)]
		client := clients[i%len(clients)]
		caseDocs = append(caseDocs, models.Case{
			ID:          uuid.New().String(),
			UserID:      lawyer.ID,
			Title:       fmt.Sprintf("Demo matter %d", i+1),
			CaseNumber:  fmt.Sprintf("LU/%d/%03d", now.Year(), rand.Intn(900)+100),
			Status:      "active",
			ClientName:  client.FullName,
			CaseType:    caseTypes[i%len(caseTypes)],
			NextHearing: now.AddDate(0, 0, 7+i).Format("2006-01-02"),
			Court:       "Lagos High Court",
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if _, err := db.Collection("cases").InsertMany(ctx, caseDocs); err != nil {
		log.Fatalf("Failed to seed cases: %v", err)
	}

	// A starter post per state so the community board isn't empty.
	var networkDocs []interface{}
	for i, lawyer := range lawyers {
		networkDocs = append(networkDocs, models.NetworkMessage{
			ID:         uuid.New().String(),
			SenderID:   lawyer.ID,
			SenderName: lawyer.FullName,
			SenderType: lawyer.UserType,
			State:      lawyer.State,
			Content:    fmt.Sprintf("Welcome to the %s bar network. Introduce yourself!", lawyer.State),
			Timestamp:  now.Add(time.Duration(i) * time.Minute),
		})
	}
	if _, err := db.Collection("network_messages").InsertMany(ctx, networkDocs); err != nil {
		log.Fatalf("Failed to seed network messages: %v", err)
	}

	log.Printf("Seeded %d users, %d bookings, %d events, %d cases, %d network posts (password %q)",
		len(userDocs), len(bookingDocs), len(eventDocs), len(caseDocs), len(networkDocs), demoPassword)
}
