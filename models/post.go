// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Post is a journal entry embedded in its owner's record. Title doubles as
// the lookup key inside one user's collection.
type Post struct {
	Title   string `bson:"postTitle" json:"postTitle"`
	Content string `bson:"content" json:"content"`
}

// Posts is the ordered post collection of a single user.
//
// Titles are not unique at write time. Lookups resolve to the first post
// with a matching title, removals drop every match.
type Posts []Post

// Index maps every title to the position of its first occurrence.
// Building it costs one pass over the collection.
func (p Posts) Index() map[string]int {
	index := make(map[string]int, len(p))
	for i, post := range p {
		if _, ok := index[post.Title]; !ok {
			index[post.Title] = i
		}
	}

	return index
}

// ByTitle returns the first post whose title equals title.
func (p Posts) ByTitle(title string) (Post, bool) {
	i, ok := p.Index()[title]
	if !ok {
		return Post{}, false
	}

	return p[i], true
}
