package handlers

import "mozeh-api/storage"

var uploads storage.Store

// InitUploads wires the blob store used by avatar and product image handlers.
func InitUploads(s storage.Store) {
	uploads = s
}
