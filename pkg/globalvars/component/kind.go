package component

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies a collaborator type.
type Kind string

// Collaborator kinds.
const (
	KindSetter  Kind = "setter"
	KindGetter  Kind = "getter"
	KindViewer  Kind = "viewer"
	KindCleaner Kind = "cleaner"
)

// Kinds lists every collaborator kind.
var Kinds = []Kind{KindSetter, KindGetter, KindViewer, KindCleaner}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a kind name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindSetter, KindGetter, KindViewer, KindCleaner:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Descriptor is the identity a collaborator presents to its host.
// GUIDs are stable so saved documents keep resolving to the same kind.
type Descriptor struct {
	Name        string
	Nickname    string
	Description string
	Category    string
	Subcategory string
	GUID        uuid.UUID
}

// Category is the host menu category shared by every collaborator.
const Category = "GHGlobalVars"

// Library describes the collaborator set as a whole.
var Library = struct {
	Name        string
	Description string
	GUID        uuid.UUID
}{
	Name:        Category,
	Description: "A set of components for getting/setting global variables within a Grasshopper definition.",
	GUID:        uuid.MustParse("ad48bf2e-6c14-452c-898b-8b501c0385ae"),
}

var descriptors = map[Kind]Descriptor{
	KindSetter: {
		Name:        "GHGlobalVarsSetter",
		Nickname:    "Setter",
		Description: "A component for setting global variables on the Grasshopper canvas.",
		Category:    Category,
		Subcategory: "Getters & Setters",
		GUID:        uuid.MustParse("beb31e00-a775-4858-bf2d-b541bf4ac55a"),
	},
	KindGetter: {
		Name:        "GHGlobalVarsGetter",
		Nickname:    "Getter",
		Description: "A component for getting global variables on the Grasshopper canvas.",
		Category:    Category,
		Subcategory: "Getters & Setters",
		GUID:        uuid.MustParse("32c8d5ee-2f6d-4c1c-a68f-8967cb20fb90"),
	},
	KindViewer: {
		Name:        "GHGlobalVarsViewer",
		Nickname:    "Viewer",
		Description: "A component for viewing all available global variables.",
		Category:    Category,
		Subcategory: "Viewer",
		GUID:        uuid.MustParse("30d0ee2e-2182-4213-92e3-0a996ad45bb7"),
	},
	KindCleaner: {
		Name:        "GHGlobalVarsCleaner",
		Nickname:    "Cleaner",
		Description: "A component for clearing the global dictionary.",
		Category:    Category,
		Subcategory: "Cleaner",
		GUID:        uuid.MustParse("31a19c1b-ec55-4972-9403-f5a1d138c030"),
	},
}

// DescriptorFor returns the descriptor for a kind.
func DescriptorFor(k Kind) (Descriptor, bool) {
	d, ok := descriptors[k]
	return d, ok
}

// KindForGUID resolves a descriptor GUID back to its kind.
func KindForGUID(id uuid.UUID) (Kind, bool) {
	for k, d := range descriptors {
		if d.GUID == id {
			return k, true
		}
	}
	return "", false
}
