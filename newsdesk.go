// Package newsdesk provides the content-management layer of the company
// website: consultancy projects, news items, and an importer that turns a
// public LinkedIn post into a news draft.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package newsdesk
