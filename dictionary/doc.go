// Package dictionary defines the runtime contract implemented by generated
// FIX dictionary packages.
//
// A generated package (for example one per FIX version) provides one type per
// field implementing VersionField, one type per message implementing Message,
// and three accessors returning process-wide singletons:
//
//	fields := fix44.Fields()               // *FieldCollection
//	side := fields.Get(54)                 // VersionField, InvalidField{} if unknown
//	msgs := fix44.Messages()               // *MessageCollection
//	nos, ok := msgs.ByMsgType("D")         // Message
//	orch := fix44.Orchestration()          // Orchestration
//
// Every value returned by this package and by generated code is immutable and
// safe for concurrent use.
package dictionary
