package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-service-core/errs"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr error
	}{
		{"defaults", func(s *Settings) {}, nil},
		{"zero value", func(s *Settings) { *s = Settings{} }, nil},
		{"postgres url", func(s *Settings) { s.Database.URL = "postgres://u:p@localhost:5432/db" }, nil},
		{"otlp endpoint", func(s *Settings) { s.Tracing.OTLPEndpoint = "http://localhost:4318" }, nil},
		{"bad level", func(s *Settings) { s.Logging.LogLevel = "loud" }, ErrInvalidLoggingConfigs},
		{"url without scheme", func(s *Settings) { s.Database.URL = "localhost/db" }, ErrInvalidDatabaseConfigs},
		{"unparsable url", func(s *Settings) { s.Database.URL = "postgres://[::1" }, ErrInvalidDatabaseConfigs},
		{"relative endpoint", func(s *Settings) { s.Tracing.OTLPEndpoint = "collector:4318/v1" }, ErrInvalidTracingConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, errs.ErrConfig)
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := Default()
	s.Database.URL = "A"

	c := s.Clone()
	c.Database.URL = "B"

	assert.Equal(t, "A", s.Database.URL)
	assert.Nil(t, (*Settings)(nil).Clone())
}
