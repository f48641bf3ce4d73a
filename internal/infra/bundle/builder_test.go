package bundle

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"fleet/config"
	"fleet/internal/domain/service"
	mockService "fleet/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBuilder(t *testing.T) (service.BundleBuilder, *mockService.MockQRCodeService) {
	qr := mockService.NewMockQRCodeService(t)
	cfg := &config.Config{
		Bundle: &config.BundleConfig{
			ServerURL: "https://fleet.example.com",
		},
	}

	return NewBuilder(cfg, qr), qr
}

func testSpec() service.BundleSpec {
	return service.BundleSpec{
		Category:         "basic",
		DeviceIdentifier: "k3x9p1",
		DeviceName:       "lobby-display_k3x9p1",
		Owner:            "alice",
		Tenant:           "default",
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
	}
}

func readArchive(t *testing.T, payload []byte) map[string][]byte {
	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)

	files := make(map[string][]byte, len(reader.File))
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		contents, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = contents
	}

	return files
}

func TestBuilder_Build_BasicBundle(t *testing.T) {
	builder, qr := createTestBuilder(t)

	qr.EXPECT().
		GenerateEnrollmentQR(service.EnrollmentQR{
			ServerURL:        "https://fleet.example.com",
			Tenant:           "default",
			DeviceIdentifier: "k3x9p1",
			DeviceName:       "lobby-display_k3x9p1",
			AccessToken:      "access-token",
		}).
		Return([]byte("png-bytes"), nil)

	bundle, err := builder.Build(context.Background(), testSpec())
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, "lobby-display_k3x9p1_basic.zip", bundle.FileName)

	files := readArchive(t, bundle.Payload)
	require.Contains(t, files, "device.properties")
	require.Contains(t, files, "README.txt")
	require.Contains(t, files, "enrollment-qr.png")
	assert.NotContains(t, files, "device.properties.tmpl")

	properties := string(files["device.properties"])
	assert.Contains(t, properties, "server-url=https://fleet.example.com")
	assert.Contains(t, properties, "device-id=k3x9p1")
	assert.Contains(t, properties, "device-name=lobby-display_k3x9p1")
	assert.Contains(t, properties, "owner=alice")
	assert.Contains(t, properties, "access-token=access-token")
	assert.Contains(t, properties, "refresh-token=refresh-token")

	assert.Equal(t, []byte("png-bytes"), files["enrollment-qr.png"])
}

func TestBuilder_Build_AdvancedBundle(t *testing.T) {
	builder, qr := createTestBuilder(t)

	qr.EXPECT().
		GenerateEnrollmentQR(mock.AnythingOfType("service.EnrollmentQR")).
		Return([]byte("png-bytes"), nil)

	spec := testSpec()
	spec.Category = "advanced"

	bundle, err := builder.Build(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, "lobby-display_k3x9p1_advanced.zip", bundle.FileName)

	files := readArchive(t, bundle.Payload)
	require.Contains(t, files, "device.properties")
	require.Contains(t, files, "startup.sh")
	require.Contains(t, files, "enrollment-qr.png")
}

func TestBuilder_Build_UnknownCategory(t *testing.T) {
	builder, _ := createTestBuilder(t)

	spec := testSpec()
	spec.Category = "bogus"

	bundle, err := builder.Build(context.Background(), spec)
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.Contains(t, err.Error(), "bogus")
}

func TestBuilder_Build_EmptyCategory(t *testing.T) {
	builder, _ := createTestBuilder(t)

	spec := testSpec()
	spec.Category = "  "

	bundle, err := builder.Build(context.Background(), spec)
	require.Error(t, err)
	assert.Nil(t, bundle)
}

func TestBuilder_Build_QRFailure(t *testing.T) {
	builder, qr := createTestBuilder(t)

	qr.EXPECT().
		GenerateEnrollmentQR(mock.AnythingOfType("service.EnrollmentQR")).
		Return(nil, errors.New("content too long"))

	bundle, err := builder.Build(context.Background(), testSpec())
	require.Error(t, err)
	assert.Nil(t, bundle)
}
