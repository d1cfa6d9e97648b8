package http

const (
	msgRegisterSuccess   = "Registration successful! You can now log in."
	msgAlreadyRegistered = "This email is already registered. Please use a different email."
	msgRegisterFailed    = "Registration failed. Please try again."
	msgRegisterError     = "An error occurred during registration."

	msgInvalidLogin = "Invalid login attempt."
	msgLoginError   = "An error occurred during login."

	msgSessionExpired   = "Your session has expired. Please log in again."
	msgAddProductFailed = "Failed to add product."
	msgListFailed       = "Could not load your products. Please try again."
)

const (
	pathLogin      = "/account/login"
	pathMyProducts = "/product/my-products"
	pathAddProduct = "/product/add"
)
