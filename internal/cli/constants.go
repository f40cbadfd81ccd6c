package cli

// Default values for CLI flags and configurations.
const (
	// EnvPrefix prefixes the environment variables that override configuration keys.
	EnvPrefix = "PULPCTL"
	// MaxDescriptionLength is the maximum length of a repository description in listings.
	MaxDescriptionLength = 40
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
)

// flagKeys maps persistent flags onto the configuration keys they override.
var flagKeys = map[string]string{
	"output":   "output_format",
	"login":    "login",
	"password": "password",
	"type":     "default_repo_type",
}
