//
// libbw converts Bitwarden JSON exports, optionally password-protected,
// into a tree of groups and entries ready to be stored in a password database.
//

// Convert an export in one call
//
//	raw, err := os.ReadFile("bitwarden_export.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	db, err := libbw.Convert(raw, "12345678")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, entry := range db.Entries {
//		fmt.Println(entry.Group.Name, "/", entry.Title)
//	}
//
// Run the steps manually
//
//	doc, err := libbw.Open(raw, "12345678") // decrypts when the export is password-protected
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	db := libbw.NewDatabase(libbw.DefaultRootName)
//	libbw.ImportVault(doc, db)
package libbw
