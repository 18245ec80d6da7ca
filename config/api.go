package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Read-only catalog surface stays public; sync triggers and brand
	// onboarding require auth.
	return []string{"/health", "/api/brands", "/api/brands/:ref", "/api/catalog/products", "/api/catalog/search"}
}
