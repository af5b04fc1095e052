package assets

// Names of the assets shipped with the binary.
const (
	DefaultStyleName   = "resume"
	DefaultContentName = "resume"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a stylesheet by name using the embedded loader.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadContent loads a content file by name using the embedded loader.
func LoadContent(name string) ([]byte, error) {
	return defaultLoader.LoadContent(name)
}
