package url

import (
	"net/url"
	"strings"

	"github.com/bnema/riblet/internal/domain/entity"
)

// Schemes lists the schemes the dispatcher governs.
type Schemes struct {
	Internal []string
	Web      []string
}

// DefaultSchemes returns the "fave" deep-link scheme and http/https.
func DefaultSchemes() Schemes {
	return Schemes{
		Internal: []string{"fave"},
		Web:      []string{"http", "https"},
	}
}

// Classify returns the class of a canonical target. Nil targets are ClassOther.
// Internal schemes take precedence if a scheme is listed in both sets.
func (s Schemes) Classify(target *url.URL) entity.TargetClass {
	if target == nil {
		return entity.ClassOther
	}
	scheme := strings.ToLower(target.Scheme)
	switch {
	case hasScheme(s.Internal, scheme):
		return entity.ClassInternal
	case hasScheme(s.Web, scheme):
		return entity.ClassWeb
	default:
		return entity.ClassOther
	}
}

func hasScheme(list []string, scheme string) bool {
	if scheme == "" {
		return false
	}
	for _, s := range list {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	return false
}
