// Package todo holds the task list state: the persisted task store, the
// completion filter, the single-task edit session and the projection that
// turns those into what the screen shows.
//
// The task list is kept in one storage slot as a flat JSON array:
//
//	[
//	  {
//	    "id": 1714557600000,
//	    "text": "Buy milk",
//	    "description": "",
//	    "dueDate": "2024-05-02",
//	    "completed": false,
//	    "createdAt": "2024-05-01T10:00:00Z"
//	  }
//	]
//
// createdAt is RFC 3339 in UTC with millisecond precision; the fraction is
// omitted when it is zero. Blobs carrying "2024-05-01T10:00:00.000Z" read
// back the same instant.
//
// There is no version field. The whole array is rewritten after every
// mutation and read once when the store is opened.
//
// # Identifiers
//
// Task ids are Unix milliseconds taken from the store's clock at creation.
// When two tasks are created within the same millisecond (or the clock
// goes backwards) the next id is the previous one plus one, so ids are
// strictly increasing for the life of a store and never reused.
//
// # Recovery
//
// A slot that cannot be read, parsed or validated does not stop the
// program. The store starts empty, copies the raw blob to a backup slot
// named "<key>.corrupt-<unix ms>" and reports a *ResetError.
package todo
