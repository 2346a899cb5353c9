package runner

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// MissingStepsHeading introduces the skeleton suggestions at the end of a run.
const MissingStepsHeading = "Add the following to your step definitions to implement missing steps:"

var (
	skeletonNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/chriserin/story/skeleton"))
	skeletonArgument  = regexp.MustCompile(`"(.*?)"`)
)

// Skeleton is a suggested step definition for a step nothing matched. ID is
// derived from the pattern, so identical suggestions share it.
type Skeleton struct {
	ID           uuid.UUID
	Pattern      string
	Placeholders []string
}

// NewSkeleton builds the suggestion for a step's match text. Each quoted
// value is replaced by a numbered placeholder: `I have "3" apples` becomes
// `I have "arg1" apples`.
func NewSkeleton(match string) Skeleton {
	var names []string
	pattern := skeletonArgument.ReplaceAllStringFunc(match, func(string) string {
		name := fmt.Sprintf("arg%d", len(names)+1)
		names = append(names, name)
		return `"` + name + `"`
	})
	return Skeleton{
		ID:           uuid.NewSHA1(skeletonNamespace, []byte(pattern)),
		Pattern:      pattern,
		Placeholders: names,
	}
}

// skeletonSet keeps the first skeleton registered for each ID, in
// registration order.
type skeletonSet struct {
	order []uuid.UUID
	byID  map[uuid.UUID]Skeleton
}

func (s *skeletonSet) add(sk Skeleton) {
	if s.byID == nil {
		s.byID = make(map[uuid.UUID]Skeleton)
	}
	if _, ok := s.byID[sk.ID]; ok {
		return
	}
	s.byID[sk.ID] = sk
	s.order = append(s.order, sk.ID)
}

func (s *skeletonSet) list() []Skeleton {
	out := make([]Skeleton, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
