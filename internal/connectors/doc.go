// Package connectors holds clients for the external services the site
// reads its content from. The airtable subpackage is the only source.
package connectors
