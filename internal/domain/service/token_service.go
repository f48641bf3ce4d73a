package service

// TokenService mints the per-device credential pair handed out during
// provisioning. Tokens are generated once per successful provisioning
// request and never stored by this service.
type TokenService interface {
	// GenerateDeviceTokens creates a new access token and refresh token
	// bound to the given device identifier.
	GenerateDeviceTokens(deviceIdentifier string) (accessToken string, refreshToken string, err error)
}
