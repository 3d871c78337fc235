package generator

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/saffronjam/go-glaze/internal/common"
)

// EnumGroup is a run of enumerators sharing a group label.
type EnumGroup struct {
	Name  string
	Enums []common.EnumConstant
}

// GroupEnums groups enums by their group label, falling back to fallback,
// in the order each group is first seen.
func GroupEnums(enums []common.EnumConstant, fallback string) []EnumGroup {
	groups := linkedhashmap.New()
	for _, e := range enums {
		key := e.Group
		if key == "" {
			key = fallback
		}
		var members []common.EnumConstant
		if v, found := groups.Get(key); found {
			members = v.([]common.EnumConstant)
		}
		groups.Put(key, append(members, e))
	}

	result := make([]EnumGroup, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		result = append(result, EnumGroup{
			Name:  it.Key().(string),
			Enums: it.Value().([]common.EnumConstant),
		})
	}
	return result
}
