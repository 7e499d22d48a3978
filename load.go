package arff

import "os"

// Load reads the ARFF file at path and parses it with the default Parser.
// Read failures are returned as *LoadError and match ErrIO.
func Load(path string) (*Dataset, error) {
	return NewParser().Load(path)
}

// Load reads the ARFF file at path and parses it.
func (p *Parser) Load(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return p.Parse(string(content))
}
