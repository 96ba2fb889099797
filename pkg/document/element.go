package document

// ElementType identifies the kind of content an extracted element carries.
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeText
	ElementTypeHeading
	ElementTypeListItem
	ElementTypeTable
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeText:
		return "Text"
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeListItem:
		return "ListItem"
	case ElementTypeTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Element is a typed unit of extracted document content. The set of
// implementations is closed: Text, Heading, ListItem and Table.
type Element interface {
	Type() ElementType
}

// Text is a plain paragraph or narrative text block.
type Text struct {
	Text string
}

func (e Text) Type() ElementType { return ElementTypeText }

// Heading is a document or section title.
type Heading struct {
	Text  string
	Level int
}

func (e Heading) Type() ElementType { return ElementTypeHeading }

// ListItem is a single bulleted or numbered item.
type ListItem struct {
	Text string
}

func (e ListItem) Type() ElementType { return ElementTypeListItem }

// Table holds cell text by row. Row and cell order follow reading order.
type Table struct {
	Rows [][]string
}

func (e Table) Type() ElementType { return ElementTypeTable }
