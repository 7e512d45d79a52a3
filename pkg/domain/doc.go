// Package domain contains the core entities shared across the portal: abstracts
// and their review lifecycle, extracted entities, user profiles and activity
// logs. The types carry no infrastructure concerns so storage, API and worker
// packages can all depend on them.
package domain
