package security

// In-memory ops client registry (replace with DB/config later). These are
// service credentials for the few write endpoints the storefront exposes,
// not customer accounts.
type Client struct {
	ID      string
	Secret  string
	Perms   []string // e.g. {"reviews.read","reviews.write"}
	Enabled bool
}

var Clients = map[string]Client{
	"svc-review-import": {ID: "svc-review-import", Secret: "review-import-secret", Perms: []string{"reviews.read", "reviews.write"}, Enabled: true},
	"svc-analytics":     {ID: "svc-analytics", Secret: "ana-secret", Perms: []string{"reviews.read"}, Enabled: true},
}
