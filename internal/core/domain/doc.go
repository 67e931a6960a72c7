// Package domain defines the core entities of the asb site service.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Record, Fields, Page, Query: rows of the hosted table service
//   - Reference: a decoded link to another record (resolved or not)
//   - Speaker, Video, Consultant, AcademyCourse, Campaign: page entities
//   - BookingInquiry, ConsultantApplication: lead-capture payloads
//
// It also owns the slug and display-name rules shared by every mapper.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import the Go
// standard library and golang.org/x/text. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, golang.org/x/text
//   - Cannot Import: Any internal/ package
package domain
