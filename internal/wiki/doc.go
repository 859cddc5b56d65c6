// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

// Package wiki is a client for the XML-RPC interface exposed by DokuWiki
// installations at <wiki>/lib/exe/xmlrpc.php. Each method maps one-to-one
// onto a named remote procedure and returns the response unmodified, or a
// typed error when the remote interface reports a fault.
package wiki
