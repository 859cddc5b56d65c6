// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package wiki

import "time"

// PageInfo describes a wiki page as returned by wiki.getPageInfo.
type PageInfo struct {
	Name         string    `xmlrpc:"name" json:"name"`
	LastModified time.Time `xmlrpc:"lastModified" json:"lastModified"`
	Author       string    `xmlrpc:"author" json:"author"`
	Version      int       `xmlrpc:"version" json:"version"`
}

// PageVersion is one entry of a page's revision history as returned by
// wiki.getPageVersions. Version doubles as the revision timestamp usable
// with the *Version procedures.
type PageVersion struct {
	User     string    `xmlrpc:"user" json:"user"`
	IP       string    `xmlrpc:"ip" json:"ip"`
	Type     string    `xmlrpc:"type" json:"type"`
	Summary  string    `xmlrpc:"sum" json:"sum"`
	Modified time.Time `xmlrpc:"modified" json:"modified"`
	Version  int       `xmlrpc:"version" json:"version"`
}

// Change is one entry returned by wiki.getRecentChanges.
type Change struct {
	Name         string    `xmlrpc:"name" json:"name"`
	LastModified time.Time `xmlrpc:"lastModified" json:"lastModified"`
	Author       string    `xmlrpc:"author" json:"author"`
	Version      int       `xmlrpc:"version" json:"version"`
	Permissions  int       `xmlrpc:"perms" json:"perms"`
	Size         int       `xmlrpc:"size" json:"size"`
}

// Link is one entry returned by wiki.listLinks. Type is "local" or "extern".
type Link struct {
	Type string `xmlrpc:"type" json:"type"`
	Page string `xmlrpc:"page" json:"page"`
	URL  string `xmlrpc:"href" json:"href"`
}
