package usecase

// SetContactIDGenerator replaces the receipt ID generator for testing
func SetContactIDGenerator(uc *ContactUseCase, f func() string) {
	uc.newID = f
}
