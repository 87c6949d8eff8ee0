package engine

// CertificateThreshold is the minimum percentage of the best attempt that
// earns the course certificate.
const CertificateThreshold = 80.0

// MaxAttempts caps how many scored submissions a student gets per course.
const MaxAttempts = 2

// IsCertified reports whether a best score/total pair earns the certificate.
// A course with no questions never certifies.
func IsCertified(bestScore, bestTotal int) bool {
	if bestTotal == 0 {
		return false
	}
	return float64(bestScore)/float64(bestTotal)*100 >= CertificateThreshold
}
