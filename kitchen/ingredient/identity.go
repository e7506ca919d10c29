package ingredient

// ID is the stable authored identifier of an ingredient identity.
// It is the basis for equality and hashing everywhere in the content system.
type ID string

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// Operation is a unary processing step applied to a single food item.
// Burning is modelled here as a processing operation, not as a recipe
// combination: pairwise recipes never produce burnt results directly.
type Operation string

const (
	OpChop Operation = "chop"
	OpCook Operation = "cook"
	OpBurn Operation = "burn"
)

// IsValid reports whether op is one of the known processing operations.
func (op Operation) IsValid() bool {
	switch op {
	case OpChop, OpCook, OpBurn:
		return true
	default:
		return false
	}
}

// Identity is one authored ingredient/food variant. Immutable at runtime.
type Identity struct {
	// ID is the unique stable identifier (e.g. "tomato_chopped").
	ID ID `json:"id"`
	// DisplayName is the player-facing name.
	DisplayName string `json:"display_name"`
	// Icon is the object path of the icon asset in the storage bucket.
	Icon string `json:"icon"`
	// Edible indicates whether the item can be served/eaten as-is.
	Edible bool `json:"edible"`
	// Category groups identities for authoring ("vegetable", "meat", ...).
	Category string `json:"category"`
	// Tags are free-form compatibility tags used by stations.
	Tags []string `json:"tags,omitempty"`
	// Processing maps an operation to the identity it produces.
	// An identity must never map an operation back to itself.
	Processing map[Operation]ID `json:"processing,omitempty"`
}

// ProcessingResult returns the identity produced by applying op, if any.
func (i *Identity) ProcessingResult(op Operation) (ID, bool) {
	if i == nil || len(i.Processing) == 0 {
		return "", false
	}
	result, ok := i.Processing[op]
	if !ok || result.IsZero() {
		return "", false
	}
	return result, true
}

// HasTag reports whether the identity carries the given compatibility tag.
func (i *Identity) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
