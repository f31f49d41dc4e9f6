package confkit

import "github.com/BrandonKowalski/confkit/pkg/confkit/locale"

// Builder assembles a Screen category by category. Labels, descriptions and
// category names pass through the translator, so they may be message IDs;
// text without a message is used as is.
type Builder struct {
	opts       ScreenOptions
	tr         Translator
	categories []Category
}

func NewBuilder(opts ScreenOptions) *Builder {
	tr := opts.Translator
	if tr == nil {
		tr = locale.Default()
	}
	return &Builder{opts: opts, tr: tr}
}

// Category starts a new category and returns its builder.
func (b *Builder) Category(name string) *CategoryBuilder {
	b.categories = append(b.categories, Category{Name: b.tr.T(name)})
	return &CategoryBuilder{b: b, index: len(b.categories) - 1}
}

// Build creates the screen.
func (b *Builder) Build() (*Screen, error) {
	opts := b.opts
	opts.Translator = b.tr
	return NewScreen(opts, b.categories)
}

// CategoryBuilder adds options to one category.
type CategoryBuilder struct {
	b     *Builder
	index int
}

func (cb *CategoryBuilder) cat() *Category {
	return &cb.b.categories[cb.index]
}

func (cb *CategoryBuilder) t(s string) string {
	return cb.b.tr.T(s)
}

func (cb *CategoryBuilder) Icon(icon Icon) *CategoryBuilder {
	cb.cat().Icon = &icon
	return cb
}

func (cb *CategoryBuilder) Description(text string) *CategoryBuilder {
	cb.cat().Description = cb.t(text)
	return cb
}

// Add appends already constructed controls without translating them.
func (cb *CategoryBuilder) Add(options ...OptionControl) *CategoryBuilder {
	cb.cat().Options = append(cb.cat().Options, options...)
	return cb
}

func (cb *CategoryBuilder) Toggle(opts ToggleOptions) *CategoryBuilder {
	opts.Label, opts.Description = cb.t(opts.Label), cb.t(opts.Description)
	return cb.Add(NewToggle(opts))
}

func (cb *CategoryBuilder) Slider(opts SliderOptions) *CategoryBuilder {
	opts.Label, opts.Description = cb.t(opts.Label), cb.t(opts.Description)
	return cb.Add(NewSlider(opts))
}

func (cb *CategoryBuilder) ColorPicker(opts ColorPickerOptions) *CategoryBuilder {
	opts.Label, opts.Description = cb.t(opts.Label), cb.t(opts.Description)
	return cb.Add(NewColorPicker(opts))
}

func (cb *CategoryBuilder) TextField(opts TextFieldOptions) *CategoryBuilder {
	opts.Label, opts.Description = cb.t(opts.Label), cb.t(opts.Description)
	opts.Placeholder = cb.t(opts.Placeholder)
	return cb.Add(NewTextField(opts))
}

func (cb *CategoryBuilder) Header(text string) *CategoryBuilder {
	return cb.Add(NewLabel(cb.t(text), LabelStyleHeader))
}

func (cb *CategoryBuilder) Label(text string) *CategoryBuilder {
	return cb.Add(NewLabel(cb.t(text), LabelStyleNormal))
}

func (cb *CategoryBuilder) Note(text string) *CategoryBuilder {
	return cb.Add(NewLabel(cb.t(text), LabelStyleMuted))
}

func (cb *CategoryBuilder) Separator() *CategoryBuilder {
	return cb.Add(NewSeparator())
}

// Category finishes this category and starts the next one.
func (cb *CategoryBuilder) Category(name string) *CategoryBuilder {
	return cb.b.Category(name)
}

func (cb *CategoryBuilder) Build() (*Screen, error) {
	return cb.b.Build()
}

// AddDropdown adds a dropdown to cb. It is a function because methods
// cannot take type parameters.
func AddDropdown[T comparable](cb *CategoryBuilder, opts DropdownOptions[T]) *CategoryBuilder {
	opts.Label, opts.Description = cb.t(opts.Label), cb.t(opts.Description)
	return cb.Add(NewDropdown(opts))
}
