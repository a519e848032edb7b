// Package docs provides generated OpenAPI documentation.
//
// docreview API
//
//	@title			docreview API
//	@version		1.0
//	@description	Human review of machine-extracted document data: page by page inspection, field correction, approval and export.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/jackzampolin/docreview
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http
package docs

//go:generate swag init -d .. -g docs/doc.go -o . --outputTypes go --parseDependency --parseInternal
