package matchers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang/mock/gomock"
)

var _ gomock.Matcher = &StartsWith{}

type StartsWith struct {
	Value string
}

func (s *StartsWith) String() string {
	return fmt.Sprintf("start with %s", s.Value)
}
func (s *StartsWith) Matches(x interface{}) bool {
	str := fmt.Sprintf("%v", x)
	return strings.HasPrefix(str, s.Value)
}

var _ gomock.Matcher = &UnderDir{}

// UnderDir matches a path equal to or nested below Dir
type UnderDir struct {
	Dir string
}

func (u *UnderDir) String() string {
	return fmt.Sprintf("path under %s", u.Dir)
}
func (u *UnderDir) Matches(x interface{}) bool {
	path, ok := x.(string)
	if !ok {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(u.Dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
