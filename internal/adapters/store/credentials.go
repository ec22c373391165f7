package store

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// credentialsSchemaURL names the embedded schema inside the compiler.
const credentialsSchemaURL = "credentials.schema.json"

//go:embed credentials.schema.json
var credentialsSchemaJSON string

var credentialsSchema = jsonschema.MustCompileString(credentialsSchemaURL, credentialsSchemaJSON)

// Credentials is one entry of the credentials file.
type Credentials struct {
	Username  string `json:"USERNAME"`
	Password  string `json:"PASSWORD"`
	Token     string `json:"TOKEN"`
	AndroidID string `json:"ANDROID_ID"`
	LangCode  string `json:"LANG_CODE"`
	Lang      string `json:"LANG"`
}

// LoadCredentials reads the credentials file at path, validates it and returns
// the first entry.
func LoadCredentials(path string) (*Credentials, error) {
	//nolint:gosec // Path is chosen by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCredentialsRead.Error()), "path", path)
	}

	return ParseCredentials(data)
}

// ParseCredentials validates data against the credentials schema and decodes the first entry.
func ParseCredentials(data []byte) (*Credentials, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCredentialsInvalid.Error())
	}

	if err := credentialsSchema.Validate(doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCredentialsInvalid.Error())
	}

	var entries []Credentials
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCredentialsInvalid.Error())
	}

	return &entries[0], nil
}
