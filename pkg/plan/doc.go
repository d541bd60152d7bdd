// Package plan turns an edited path table into a safe, ordered sequence
// of abstract filesystem actions.
//
// The pipeline is: ParseRows reads the edited table back into EditRows,
// ResolveIntents classifies each ID's rows against the Snapshot into a
// tagged Intent, and Build lowers the intents onto a dependency graph,
// breaks rename cycles per policy, and emits the final action list.
//
// The planner is pure: it performs no I/O, trusts the Snapshot it is
// given, and produces byte-identical output for identical input.
package plan
