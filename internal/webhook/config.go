package webhook

// DefaultUserAgent is sent when Config.UserAgent is empty
const DefaultUserAgent = "discorder"

// Config holds webhook endpoint configuration
type Config struct {
	URL       string // Webhook endpoint URL
	UserAgent string // User-Agent header value
}
