package handlers

import (
	userRepoPkg "eventra/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration. UserRepo is carried for the auth middleware.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth      *AuthHandler
	Vendor    *VendorHandler
	Service   *ServiceHandler
	Booking   *BookingHandler
	Review    *ReviewHandler
	Chat      *ChatHandler
	Admin     *AdminHandler
	Storage   *StorageHandler
	Assistant *AssistantHandler
}
