package mailer

import (
	"context"
	"testing"

	"train-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_DisabledWithoutHost(t *testing.T) {
	m := New(utils.EmailConfig{}, zap.NewNop())
	assert.False(t, m.Enabled())
	assert.NoError(t, m.SendBookingConfirmation(context.Background(), "a@b.c", BookingConfirmation{}))
}

func TestNew_EnabledWithHost(t *testing.T) {
	m := New(utils.EmailConfig{Host: "smtp.example.com", Port: 587}, zap.NewNop())
	assert.True(t, m.Enabled())
}

func TestRenderBookingConfirmation(t *testing.T) {
	body, err := RenderBookingConfirmation(BookingConfirmation{
		Username:    "asha",
		PNR:         "AB12CD34EF",
		TrainName:   "Rajdhani Express",
		TrainNumber: "12001",
		FromStation: "Delhi",
		ToStation:   "Mumbai",
		TotalAmount: 2400,
		TicketURL:   "http://localhost:8080/e-ticket/TKT1234ABCD/",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "AB12CD34EF")
	assert.Contains(t, body, "2400.00")
	assert.Contains(t, body, "Rajdhani Express (12001)")
	assert.Contains(t, body, "/e-ticket/TKT1234ABCD/")
}
