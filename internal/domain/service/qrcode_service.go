package service

// EnrollmentQR is the payload encoded into the QR code shipped inside a
// provisioning bundle. A technician scans it to point the physical device at
// this backend with its freshly minted credentials.
type EnrollmentQR struct {
	ServerURL        string `json:"server_url"`
	Tenant           string `json:"tenant"`
	DeviceIdentifier string `json:"device_identifier"`
	DeviceName       string `json:"device_name"`
	AccessToken      string `json:"access_token"`
}

// QRCodeService renders enrollment QR codes.
type QRCodeService interface {
	// GenerateEnrollmentQR renders the payload as a PNG image.
	GenerateEnrollmentQR(payload EnrollmentQR) ([]byte, error)
}
