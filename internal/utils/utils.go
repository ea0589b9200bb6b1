package utils

// Contains checks if a slice contains a specific element
func Contains[T comparable](slice []T, item T) bool {
	for _, elem := range slice {
		if elem == item {
			return true
		}
	}
	return false
}
