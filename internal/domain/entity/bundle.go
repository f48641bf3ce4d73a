package entity

// ProvisioningCredential is the ephemeral token pair minted for a device
// during provisioning. It is handed to the caller inside the bundle and is
// never persisted by this service.
type ProvisioningCredential struct {
	DeviceIdentifier string `json:"device_identifier"`
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
}

// ProvisioningBundle is the ready-to-flash artifact produced for a freshly
// enrolled device. Once returned it is owned entirely by the caller.
type ProvisioningBundle struct {
	Payload  []byte // Zip archive contents.
	FileName string // Suggested download filename.
}
