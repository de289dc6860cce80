// Package objects exposes the generic storage driver over HTTP.
//
// It is a thin pass-through: every route maps onto exactly one driver
// operation and adds no storage semantics of its own. Driver errors are
// translated to HTTP statuses (not found → 404, permission denied → 403,
// anything else → 502).
//
// # Routes
//
//   - GET    /objects/list        — list paths under a prefix (lazy, paged underneath)
//   - GET    /objects/content/*   — stream the object body
//   - GET    /objects/stat/*      — object size and last-modified
//   - PUT    /objects/content/*   — upload the request body
//   - DELETE /objects/content/*   — delete the object
//   - POST   /objects/copy        — server-side copy {source, destination}
//   - POST   /objects/move        — copy + delete (not atomic)
//   - GET    /objects/sign/*      — pre-signed retrieval URL
package objects
