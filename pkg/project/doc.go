// Package project loads nuxtgen project files (YAML or JSON) into a
// model.TemplateContext.
//
// A project file mirrors the template context:
//
//	app:
//	  mainComponent: ./app.vue
//	  plugins:
//	    - ./plugins/router.ts
//	    - ./plugins/analytics.client.ts
//	  layouts:
//	    default: ./layouts/default.vue
//	  middleware:
//	    - ./middleware/log.global.ts
//	options:
//	  css: [./assets/main.css]
//	  runtimeConfig:
//	    public:
//	      apiBase: /api
//
// Plugins, layouts and middleware accept the short string form shown above;
// plugin modes and global middleware are inferred from the `.client`,
// `.server` and `.global` filename suffixes. Paths starting with `./`, `../`
// or `~/` are resolved against options.rootDir.
package project
