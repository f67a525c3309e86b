// Package model defines the read-only context every template renders from.
// A TemplateContext pairs the application model (components, plugins, layouts,
// middleware, app config fragments) with the global build options (root and
// build directories, runtime config, installed modules, public path options).
// The types carry both json and mapstructure tags so project files decode
// straight into them and snapshots stay deterministic.
package model
