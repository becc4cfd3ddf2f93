// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package upload stores house photos on local disk.

	images := upload.NewStore(cfg.UploadDir)
	imagePath, err := images.Save(header.Filename, header.Header.Get("Content-Type"), header.Size, file)

Only jpeg, png, webp and gif images up to MaxSize (5 MiB) are accepted.
Rejected uploads return ErrInvalidType or ErrTooLarge, whose messages are
safe to show the caller. Files get a random UUID name with the original
extension and are served under URLPrefix ("/uploads/").

Stored files are never cleaned up when a house is deleted; the house only
keeps the path string.
*/
package upload
