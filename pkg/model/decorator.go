package model

// Decorator adjusts a template context before rendering, e.g. resolving
// relative paths or filling defaults.
type Decorator interface {
	Decorate(*TemplateContext) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*TemplateContext) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(ctx *TemplateContext) error {
	return fn(ctx)
}
