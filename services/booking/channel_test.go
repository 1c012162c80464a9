package booking

import (
	"strings"
	"testing"

	"lawyerup/config"
	"lawyerup/models"

	"github.com/stretchr/testify/assert"
)

func TestAssignChannelVideo(t *testing.T) {
	location, link := assignChannel(models.ConsultationVideo, nil)
	assert.Equal(t, videoChannelLabel, location)
	assert.True(t, strings.HasPrefix(link, "https://meet.google.com/"))

	// Links are unique per booking.
	_, other := assignChannel(models.ConsultationVideo, nil)
	assert.NotEqual(t, link, other)
}

func TestAssignChannelAudio(t *testing.T) {
	config.AppConfig.AudioContactNumber = "831216968"
	location, link := assignChannel(models.ConsultationAudio, nil)
	assert.Equal(t, "831216968", location)
	assert.Empty(t, link)
}

func TestAssignChannelInPerson(t *testing.T) {
	tests := []struct {
		name   string
		lawyer *models.User
		want   string
	}{
		{
			"office address wins",
			&models.User{OfficeAddress: "12 Allen Avenue", City: "Ikeja", State: "Lagos"},
			"12 Allen Avenue",
		},
		{
			"city and state fallback",
			&models.User{City: "Ikeja", State: "Lagos"},
			"Ikeja, Lagos",
		},
		{
			"city without state",
			&models.User{City: "Ikeja"},
			"Ikeja",
		},
		{
			"empty profile",
			&models.User{},
			pendingOfficeLabel,
		},
		{
			"missing profile",
			nil,
			pendingOfficeLabel,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			location, link := assignChannel(models.ConsultationInPerson, tc.lawyer)
			assert.Equal(t, tc.want, location)
			assert.Empty(t, link)
		})
	}
}

func TestAssignChannelUnknownType(t *testing.T) {
	location, link := assignChannel("telepathy", nil)
	assert.Empty(t, location)
	assert.Empty(t, link)
}
