// Package plugin turns navigator.plugins entries into normalized records.
//
//	records := plugin.Enumerate(snapshot)
//	for _, r := range records {
//	    fmt.Println(r.Slug) // "adobe_flash_player"
//	}
package plugin
