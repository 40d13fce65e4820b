package constants

const (
	// MinPasswordLength is the minimum accepted password length at
	// registration and reset.
	MinPasswordLength = 8

	// BallsPerOver is the nominal number of legal deliveries in an over.
	BallsPerOver = 6

	// MaxWicketsPerOver bounds dismissals credited within a single over,
	// extras ignored.
	MaxWicketsPerOver = BallsPerOver

	// ResetTokenBytes is the entropy of a password reset token. 16 bytes
	// keeps tokens in the 128-bit unguessable class.
	ResetTokenBytes = 16
)
