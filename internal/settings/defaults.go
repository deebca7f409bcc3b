// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

// Defaults returns a fresh copy of the compiled-in option defaults. The
// values are the ones the UI expects to find when the operator did not set an
// option; do not change them without reviewing every consumer.
//
// Booleans are kept as booleans, every other value is textual exactly as the
// operator would write it in lms.ini.
func Defaults() Tree {
	return Tree{
		"jambox": {
			"cache":          String("1"),
			"cache_lifetime": String("472000"),
			"enabled":        String("0"),
			"haslo":          String("haslodosms"),
			"login":          String("Imie i nazwisko"),
			"serwer":         String("https://sms.sgtsa.pl/test/xmlrpc"),
			"numberplanid":   String("1"),
		},
		"radius": {
			"coa_port":   String("3799"),
			"auth_login": String("id"),
			"page_view":  String("50"),
		},
		"homepage": {
			"box_lms":        String("1"),
			"box_system":     String("1"),
			"box_customer":   String("1"),
			"box_nodes":      String("1"),
			"box_helpdesk":   String("1"),
			"box_links":      String("1"),
			"box_totd":       String("0"),
			"box_board":      String("1"),
			"box_callcenter": String("1"),
		},
		"netdevices": {
			"force_connection":      String("1"),
			"force_network_to_host": String("0"),
			"force_network_gateway": String("1"),
			"force_network_dns":     String("1"),
			"pppoe_login":           String("0"),
		},
		"database": {
			"type":     String("mysql"),
			"host":     String("localhost"),
			"user":     String("mysql"),
			"database": String("lms"),
		},
		"autobackup": {
			"ftphost":       String(""),
			"ftpuser":       String(""),
			"ftppass":       String(""),
			"ftpssl":        String("0"),
			"db_backup":     String("1"),
			"db_gz":         String("1"),
			"db_stats":      String("0"),
			"db_ftpsend":    String("0"),
			"db_ftppath":    String("/iNET_LMS_DB_DUMP"),
			"dir_ftpsend":   String("0"),
			"dir_ftpaction": String("update"),
			"dir_local":     String(""),
			"dir_ftp":       String(""),
		},
		"registryequipment": {
			"enabled":      String("1"),
			"car_eventdic": String("1"),
		},
		"phpui": {
			"default_division":           String("0"),
			"lang":                       String(""),
			"iphistory":                  String("1"),
			"iphistory_pagelimit":        String("50"),
			"allow_from":                 String(""),
			"default_module":             String("welcome"),
			"timeout":                    String("1800"),
			"customerlist_pagelimit":     String("100"),
			"nodelist_pagelimit":         String("100"),
			"balancelist_pagelimit":      String("100"),
			"invoicelist_pagelimit":      String("100"),
			"debitnotelist_pagelimit":    String("100"),
			"ticketlist_pagelimit":       String("100"),
			"accountlist_pagelimit":      String("100"),
			"domainlist_pagelimit":       String("100"),
			"aliaslist_pagelimit":        String("100"),
			"configlist_pagelimit":       String("100"),
			"receiptlist_pagelimit":      String("100"),
			"taxratelist_pagelimit":      String("100"),
			"numberplanlist_pagelimit":   String("100"),
			"divisionlist_pagelimit":     String("100"),
			"documentlist_pagelimit":     String("100"),
			"voipaccountlist_pagelimit":  String("100"),
			"networkhosts_pagelimit":     String("256"),
			"messagelist_pagelimit":      String("100"),
			"recordlist_pagelimit":       String("100"),
			"cashreglog_pagelimit":       String("100"),
			"reload_type":                String("sql"),
			"reload_execcmd":             String("/bin/true"),
			"reload_sqlquery":            String(""),
			"lastonline_limit":           String("600"),
			"timetable_days_forward":     String("7"),
			"installation_name":          String(""),
			"gd_translate_to":            String("ISO-8859-2"),
			"check_for_updates_period":   String("86400"),
			"homedir_prefix":             String("/home/"),
			"default_taxrate":            String("23.00"),
			"default_zip":                String(""),
			"default_city":               String(""),
			"default_address":            String(""),
			"smarty_debug":               Bool(false),
			"force_ssl":                  Bool(false),
			"allow_mac_sharing":          Bool(false),
			"big_networks":               Bool(false),
			"short_pagescroller":         Bool(false),
			"helpdesk_stats":             Bool(true),
			"helpdesk_customerinfo":      Bool(true),
			"helpdesk_backend_mode":      Bool(false),
			"helpdesk_sender_name":       String(""),
			"helpdesk_reply_body":        Bool(false),
			"use_invoices":               Bool(false),
			"ticket_template_file":       String("rtticketprint.html"),
			"use_current_payday":         Bool(false),
			"default_monthly_payday":     String(""),
			"newticket_notify":           Bool(false),
			"to_words_short_version":     Bool(false),
			"ticketlist_status":          String(""),
			"ewx_support":                Bool(false),
			"invoice_check_payment":      Bool(false),
			"note_check_payment":         Bool(false),
			"radius":                     String("1"),
			"public_ip":                  String("1"),
			"default_assignment_period":  String("3"),
			"default_assignment_invoice": String("0"),
			"syslog_level":               String("1"),
			"syslog_pagelimit":           String("100"),
			"callcenter_pagelimit":       String("50"),
		},
		"invoices": {
			"template_file":               String("FT-0100"),
			"content_type":                String("text/html"),
			"cnote_template_file":         String("standard"),
			"print_balance_history":       Bool(false),
			"print_balance_history_limit": String("10"),
			"default_printpage":           String("original,copy"),
			"type":                        String("pdf"),
			"attachment_name":             String(""),
			"paytime":                     String("14"),
			"paytype":                     String("1"),
			"default_type_of_documents":   String("invoice"),
			"template_version":            String("1"),
			"sdateview":                   String("1"),
			"urllogofile":                 String(""),
			"set_protection":              String("1"),
			"template_file_proforma":      String("FT-0100"),
			"create_pdf_file":             String("0"),
			"create_pdf_file_proforma":    String("0"),
			"edit_closed":                 String("0"),
			"deleted_closed":              String("0"),
		},
		"finances": {
			"suspension_percentage": String("0"),
		},
		"receipts": {
			"template_file":   String("receipt.html"),
			"content_type":    String("text/html"),
			"type":            String("html"),
			"attachment_name": String(""),
		},
		"notes": {
			"template_file":   String("note.html"),
			"content_type":    String("text/html"),
			"type":            String("html"),
			"attachment_name": String(""),
			"paytime":         String("14"),
		},
		"mail": {
			"debug_email":    String(""),
			"smtp_host":      String("127.0.0.1"),
			"smtp_port":      String("25"),
			"smtp_auth_type": String("LOGIN"),
			"smtp_username":  String(""),
			"smtp_password":  String(""),
		},
		"zones": {
			"hostmaster_mail":       String("hostmaster.localhost"),
			"master_dns":            String("localhost"),
			"slave_dns":             String("localhost"),
			"default_ttl":           String("3600"),
			"ttl_refresh":           String("28800"),
			"ttl_retry":             String("7200"),
			"ttl_expire":            String("604800"),
			"ttl_minimum":           String("86400"),
			"default_webserver_ip":  String("127.0.0.1"),
			"default_mailserver_ip": String("127.0.0.1"),
			"default_mx":            String("localhost"),
		},
		"gadugadu": {
			"gg_number":              String(""),
			"gg_passwd":              String(""),
			"gg_signature_statuson":  String(""),
			"gg_signature_statusoff": String(""),
			"gg_header":              String(""),
			"gg_footer":              String(""),
		},
		"sms": {
			"from":                String(""),
			"password":            String(""),
			"prefix":              String("48"),
			"service":             String("smscenter"),
			"smscenter_type":      String("static"),
			"username":            String(""),
			"smsapi_eco":          String("1"),
			"smsapi_fast":         String("0"),
			"smsapi_nounicode":    String("1"),
			"smsapi_normalize":    String("1"),
			"smsapi_max_parts":    String("3"),
			"smsapi_skip_foreign": String("1"),
			"mt_debug":            String("0"),
			"mt_host":             String(""),
			"mt_partreverse":      String("0"),
			"mt_password":         String(""),
			"mt_port":             String("8728"),
			"mt_usb":              String("usb1"),
			"mt_username":         String(""),
		},
		"hiperus_c5": {
			"numberplanid":           String(""),
			"taxrate":                String(""),
			"prodid":                 String(""),
			"content":                String("szt"),
			"leftmonth":              String("1"),
			"wlr":                    String("0"),
			"accountlist_pagelimit":  String("50"),
			"terminallist_pagelimit": String("50"),
			"force_relationship":     String("1"),
			"number_manually":        String("0"),
			"lms_login":              String(""),
			"lms_pass":               String(""),
			"lms_url":                String("http://localhost/lms"),
		},
		"monit": {
			"active_monitoring":         String("1"),
			"autocreate_chart":          String("0"),
			"netdev_test":               String("1"),
			"netdev_test_type":          String("icmp"),
			"netdev_time_max":           String("100"),
			"nodes_test":                String("1"),
			"nodes_test_type":           String("icmp"),
			"owner_test":                String("1"),
			"owner_test_type":           String("icmp"),
			"packetsize":                String("32"),
			"step_test_netdev":          String("5"),
			"step_test_nodes":           String("10"),
			"step_test_own":             String("10"),
			"test_script_dir":           String("/usr/local/sbin/lms-monitoring.pl"),
			"live_ping":                 String("1"),
			"step_test_signal":          String("15"),
			"signal_test":               String("1"),
			"rrdtool_dir":               String("/usr/bin/rrdtool"),
			"display_chart_in_node_box": String("1"),
		},
		"voip": {
			"enabled":         String("0"),
			"taxid":           String("1"),
			"pg_pass":         String(""),
			"pg_host":         String(""),
			"voip_as_host":    String("127.0.0.1"),
			"voip_as_login":   String("asterisk"),
			"voip_as_pass":    String(""),
			"voip_timeswitch": String("1"),
			"voip_set_remb":   String("1"),
			"jpgraph":         String("/usr/share/jpgraph"),
			"mondir":          String("/var/spool/asterisk/monitor/"),
			"fax_outgoingdir": String("/var/spool/asterisk/fax/outgoing/"),
			"fax_incomingdir": String("/var/spool/asterisk/fax/incoming/"),
			"fax_statusdir":   String("/var/spool/asterisk/outgoing_done/"),
			"mailboxdir":      String("/var/spool/asterisk/voicemail/default/"),
			"dialplan_file":   String("/var/spool/asterisk/virtualpbx/dialplan.conf"),
			"incvoipdir":      String("/var/spool/asterisk/incvoip/"),
			"ivrdir":          String("/var/spool/asterisk/ivr/"),
			"wsdlurl":         String("https://soap.nettelekom.pl/voip.wsdl"),
			"wsdllogin":       String(""),
			"wsdlpassword":    String(""),
			"cdrperpage":      String("20"),
		},
	}
}
