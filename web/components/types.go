package components

// Attrs are extra HTML attributes, rendered in key order.
type Attrs map[string]string

// Option is one entry of a Select.
type Option struct {
	Value string
	Label string
}

// TextAreaProps configures TextArea.
type TextAreaProps struct {
	ID          string
	Name        string
	Label       string
	Value       string
	Placeholder string
	Rows        int
	Class       string
	Attrs       Attrs
}

// SelectProps configures Select.
type SelectProps struct {
	ID       string
	Name     string
	Label    string
	Options  []Option
	Selected string
	Class    string
	Attrs    Attrs
}

// SliderProps configures Slider.
type SliderProps struct {
	ID      string
	Name    string
	Label   string
	Help    string
	Min     int
	Max     int
	Value   int
	ValueID string // element showing the current value
	Class   string
	Attrs   Attrs
}

// AlertVariant selects the color scheme of an Alert.
type AlertVariant string

const (
	AlertInfo    AlertVariant = "info"
	AlertSuccess AlertVariant = "success"
	AlertWarning AlertVariant = "warning"
	AlertError   AlertVariant = "error"
)

// ImageProps configures Image.
type ImageProps struct {
	Src     string
	Alt     string
	Caption string
	Width   int // 0 lets the image fill its column
	Class   string
}
