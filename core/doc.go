// Package core contains the domain model and the pure business logic for the
// music release lifecycle: value types, entities, the release state machine,
// the stream monetization policy, the payment calculation, the fuzzy title
// search, and the domain events each use case produces.
//
// Everything in this package is free of side effects. Persistence, time, and
// identifier generation live behind the collaborator interfaces in package
// service and are never touched from here.
package core
