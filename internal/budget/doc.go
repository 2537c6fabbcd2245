// Package budget evaluates budget limits against recorded expenses.
//
// All functions in this package are pure. The current time is never read
// directly; callers pass it in, either explicitly or through a Clock bound to
// an Evaluator.
//
// The evaluation for a single limit is:
//
//  1. WindowStart derives the start of the current daily, weekly or monthly window.
//  2. Spent sums the amounts of all expenses in the limit's category dated at or after that start.
//  3. A Warning is produced when the sum reaches or exceeds the limit.
package budget
