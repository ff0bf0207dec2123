package mapfile

// Document is the YAML representation of a transit map.
type Document struct {
	Name            string        `yaml:"name" validate:"required"`
	LinesWidth      int           `yaml:"lines_width" validate:"gt=0"`
	StationDiameter int           `yaml:"station_diameter" validate:"gt=0"`
	Lines           []LineDoc     `yaml:"lines" validate:"dive"`
	Stations        []StationDoc  `yaml:"stations" validate:"dive"`
	Segments        []SegmentDoc  `yaml:"segments" validate:"dive"`
	Transfers       []TransferDoc `yaml:"transfers" validate:"dive"`
}

// LineDoc describes a transit line.
type LineDoc struct {
	Name       string `yaml:"name" validate:"required"`
	Color      string `yaml:"color" validate:"required,hexcolor"`
	LabelColor string `yaml:"label_color" validate:"omitempty,hexcolor"`
}

// StationDoc describes a station. Point and Rect are optional: a station
// without a point is not drawn on this schematic.
type StationDoc struct {
	Name  string `yaml:"name"`
	Line  int    `yaml:"line" validate:"gte=0"`
	Point string `yaml:"point"`
	Rect  string `yaml:"rect"`
}

// SegmentDoc describes a directed segment between two stations.
type SegmentDoc struct {
	ID        int     `yaml:"id" validate:"gte=0"`
	From      int     `yaml:"from" validate:"gte=0"`
	To        int     `yaml:"to" validate:"gte=0"`
	Line      int     `yaml:"line" validate:"gte=0"`
	Delay     float64 `yaml:"delay" validate:"gte=0"`
	Invisible bool    `yaml:"invisible"`
	Planned   bool    `yaml:"planned"`
	Nodes     string  `yaml:"nodes"`
}

// TransferDoc describes an interchange between two stations.
type TransferDoc struct {
	From      int  `yaml:"from" validate:"gte=0"`
	To        int  `yaml:"to" validate:"gte=0"`
	Invisible bool `yaml:"invisible"`
}
