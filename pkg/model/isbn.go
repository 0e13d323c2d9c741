package model

type GroupIndex int

const (
	GSIPrefix GroupIndex = iota
	GroupIdentifier
	PublisherCode
	ItemNumber
	CheckDigit
)

// GroupCount is the number of delimited groups in an ISBN-13.
const GroupCount = 5

var labels = [GroupCount]string{
	"GSI prefix",
	"Group identifier",
	"Publisher code",
	"Item number",
	"Check digit",
}

func (i GroupIndex) Label() string {
	if i < 0 || int(i) >= GroupCount {
		return ""
	}
	return labels[i]
}

// Group is one optional ISBN group. An absent group is never represented
// by an empty Value alone; Present must be checked.
type Group struct {
	Value   string
	Present bool
}

func Absent() Group {
	return Group{}
}

func Of(value string) Group {
	return Group{Value: value, Present: true}
}

func (g Group) Get() (string, bool) {
	return g.Value, g.Present
}

// GroupSet holds the five ISBN groups in fixed label order.
type GroupSet [GroupCount]Group

func NewGroupSet(values ...string) GroupSet {
	var gs GroupSet
	for i := 0; i < len(values) && i < GroupCount; i++ {
		gs[i] = Of(values[i])
	}
	return gs
}

func (gs GroupSet) Present() int {
	n := 0
	for _, g := range gs {
		if g.Present {
			n++
		}
	}
	return n
}

func (gs GroupSet) Values() []string {
	out := make([]string, 0, GroupCount)
	for _, g := range gs {
		if g.Present {
			out = append(out, g.Value)
		}
	}
	return out
}

func (gs GroupSet) Get(i GroupIndex) Group {
	return gs[i]
}

// Decomposition is the labeled view of a successfully validated ISBN.
type Decomposition struct {
	GSIPrefix       string `json:"gsi_prefix" validate:"required,isbndigits"`
	GroupIdentifier string `json:"group_identifier" validate:"required,isbndigits"`
	PublisherCode   string `json:"publisher_code" validate:"required,isbndigits"`
	ItemNumber      string `json:"item_number" validate:"required,isbndigits"`
	CheckDigit      string `json:"check_digit" validate:"required,isbndigits"`
}

func (gs GroupSet) Decomposition() Decomposition {
	return Decomposition{
		GSIPrefix:       gs[GSIPrefix].Value,
		GroupIdentifier: gs[GroupIdentifier].Value,
		PublisherCode:   gs[PublisherCode].Value,
		ItemNumber:      gs[ItemNumber].Value,
		CheckDigit:      gs[CheckDigit].Value,
	}
}

type DecomposeRequest struct {
	ISBN string `json:"isbn" validate:"required"`
}
