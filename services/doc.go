// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package services holds the business rules for projects and notes.

Services know SQL but not HTTP. Handlers translate their errors:

	note, err := notes.Create(ctx, req, key)
	switch services.KindOf(err) {
	case services.KindBadRequest: // 400
	case services.KindNotFound:   // 404
	case services.KindConflict:   // 409
	}

# Notes

List filters by project, optional title substring and optional cursor,
ordered by id and capped at the page size (default 10, max 100). The
cursor matches a single id exactly.

Create rejects an unknown project with BadRequest, and rejects a title
that already exists in the project with Conflict when an idempotency key
accompanies the request. The key is checked for presence only; it is not
stored, so a retry is rejected rather than replayed.

Update applies a NotePatch: nil fields keep the stored value.
*/
package services
