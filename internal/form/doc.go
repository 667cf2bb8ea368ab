// Package form implements the add/edit form state machine and the drafts it
// edits. Drafts are value copies: nothing here touches a cache or the
// network.
//
//	Closed --OpenAdd--> Adding --Preview--> Previewing --Submit--> Submitting
//	Closed --Edit-----> Editing --Submit--> Submitting
//	Submitting --Succeed--> Closed
//	Submitting --Fail-----> previous state, draft intact
//	any --Cancel--> Closed
package form
