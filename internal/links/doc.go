// Package links builds the outbound URLs the site hands to visitors:
// booking form deep links, WhatsApp chat links, UTM-tagged calls to action
// and embeddable video players.
package links
