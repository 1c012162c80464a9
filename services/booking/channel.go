package booking

import (
	"fmt"
	"strings"

	"lawyerup/config"
	"lawyerup/models"

	"github.com/google/uuid"
)

const videoChannelLabel = "Google Meet"

const pendingOfficeLabel = "Lawyer's Office (Address pending)"

// assignChannel derives the consultation's location and meeting link from
// its type and the lawyer's profile. Unrecognized types yield empty values
// and are not an error.
func assignChannel(consultationType string, lawyer *models.User) (location, meetLink string) {
	switch consultationType {
	case models.ConsultationVideo:
		return videoChannelLabel, newMeetLink()
	case models.ConsultationAudio:
		return config.AppConfig.AudioContactNumber, ""
	case models.ConsultationInPerson:
		return officeLocation(lawyer), ""
	default:
		return "", ""
	}
}

// officeLocation picks the best available address from the lawyer profile.
func officeLocation(lawyer *models.User) string {
	if lawyer == nil {
		return pendingOfficeLabel
	}
	if lawyer.OfficeAddress != "" {
		return lawyer.OfficeAddress
	}
	if lawyer.City != "" {
		return strings.TrimSuffix(fmt.Sprintf("%s, %s", lawyer.City, lawyer.State), ", ")
	}
	return pendingOfficeLabel
}

// newMeetLink generates a globally unique, opaque meeting link. The
// xxx-xxxx-xxx shape is cosmetic; uniqueness comes from the UUID hex.
func newMeetLink() string {
	a := uuid.New().String()
	b := strings.ReplaceAll(a, "-", "")
	c := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("https://meet.google.com/%s-%s-%s", b[:3], b[3:7], c[:3])
}
