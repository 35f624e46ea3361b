// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// VotingEngine and DecisionLedger own proposal and decision state. Workflow
// sits in front of both: it runs the text validation gate, materializes
// approved proposals, and fans events out to notification sinks.
package app
