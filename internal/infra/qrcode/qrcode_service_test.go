package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"fleet/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateEnrollmentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data, err := svc.GenerateEnrollmentQR(service.EnrollmentQR{
		ServerURL:        "https://fleet.example.com",
		Tenant:           "default",
		DeviceIdentifier: "k3x9p1",
		DeviceName:       "lobby-display_k3x9p1",
		AccessToken:      "access-token",
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_DefaultsApplied(t *testing.T) {
	svc := NewQRCodeService(0, "bogus")

	data, err := svc.GenerateEnrollmentQR(service.EnrollmentQR{DeviceIdentifier: "k3x9p1"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
