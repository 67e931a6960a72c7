// Package services implements the driving port interfaces.
// Services hold the site's read and write rules and orchestrate
// calls to the record service through driven ports.
//
// The SpeakerResolver fills in speaker display fields on videos,
// and View tracks latest-wins page loads.
package services
