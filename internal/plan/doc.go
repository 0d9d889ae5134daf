// Package plan extracts structured issue records from a markdown plan
// document.
//
// The document is a hand-authored list of issue blocks of the form:
//
//	### Issue 1: Title of the work item
//
//	**Labels:** `setup`, `infrastructure`, `priority:high`
//	**Estimate:** 1-2h
//
//	**Description:**
//	Free-form markdown, including task checklists and an optional
//	**Acceptance criteria:** subsection.
//
// A block extends until the next "### Issue " heading or end of document.
// Blocks that do not match the expected shape are dropped from the result
// and reported in Result.Skipped.
package plan
