package smart

// attributeDef describes a known SMART attribute id.
type attributeDef struct {
	name     string
	critical bool
}

// attributeDefs is the known-attribute table keyed by SMART id. Ids
// absent from this table are still parsed and reported, just with an
// "Unknown_Attribute" name and critical=false.
var attributeDefs = map[uint8]attributeDef{
	0x01: {"Read_Error_Rate", false},
	0x02: {"Throughput_Performance", false},
	0x03: {"Spin_Up_Time", false},
	0x04: {"Start_Stop_Count", false},
	0x05: {"Reallocated_Sector_Ct", true},
	0x07: {"Seek_Error_Rate", false},
	0x08: {"Seek_Time_Performance", false},
	0x09: {"Power_On_Hours", false},
	0x0A: {"Spin_Retry_Count", true},
	0x0B: {"Recalibration_Retries", false},
	0x0C: {"Power_Cycle_Count", false},
	0x0D: {"Soft_Read_Error_Rate", false},
	0xAA: {"Available_Reserved_Space", false},
	0xAB: {"SSD_Program_Fail_Count", true},
	0xAC: {"SSD_Erase_Fail_Count", true},
	0xAD: {"SSD_Wear_Leveling_Count", false},
	0xAE: {"Unexpected_Power_Loss", false},
	0xB7: {"SATA_Downshift_Count", false},
	0xB8: {"End_to_End_Error", true},
	0xBB: {"Reported_Uncorrect", true},
	0xBC: {"Command_Timeout", false},
	0xBD: {"High_Fly_Writes", true},
	0xBE: {"Airflow_Temperature", false},
	0xBF: {"G-Sense_Error_Rate", false},
	0xC0: {"Power-Off_Retract_Count", false},
	0xC1: {"Load_Cycle_Count", false},
	0xC2: {"Temperature_Celsius", false},
	0xC3: {"Hardware_ECC_Recovered", false},
	0xC4: {"Reallocation_Event_Count", true},
	0xC5: {"Current_Pending_Sector", true},
	0xC6: {"Offline_Uncorrectable", true},
	0xC7: {"UltraDMA_CRC_Error_Count", false},
	0xC8: {"Write_Error_Rate", false},
	0xC9: {"Soft_Read_Error_Rate", false},
	0xCA: {"Data_Address_Mark_Error", false},
	0xCB: {"Run_Out_Cancel", false},
	0xCC: {"Soft_ECC_Correction", false},
	0xCD: {"Thermal_Asperity_Rate", false},
	0xCE: {"Flying_Height", false},
	0xCF: {"Spin_High_Current", false},
	0xD0: {"Spin_Buzz", false},
	0xD1: {"Offline_Seek_Performance", false},
	0xDC: {"Disk_Shift", false},
	0xDD: {"G-Sense_Error_Rate_2", false},
	0xDE: {"Loaded_Hours", false},
	0xDF: {"Load_Retry_Count", false},
	0xE0: {"Load_Friction", false},
	0xE1: {"Load_Cycle_Count_2", false},
	0xE2: {"Load_In_Time", false},
	0xE3: {"Torque_Amplification", false},
	0xE4: {"Power-Off_Retract_Cycle", false},
	0xE6: {"GMR_Head_Amplitude", false},
	0xE7: {"Temperature_Celsius_2", false},
	0xE8: {"Endurance_Remaining", false},
	0xE9: {"Power_On_Hours_2", false},
	0xEA: {"Average_Erase_Count", false},
	0xEB: {"Good_Block_Count", false},
	0xF0: {"Head_Flying_Hours", false},
	0xF1: {"Total_LBAs_Written", false},
	0xF2: {"Total_LBAs_Read", false},
	0xFA: {"Read_Error_Retry_Rate", false},
	0xFE: {"Free_Fall_Protection", false},
}

const unknownAttributeName = "Unknown_Attribute"

func lookupAttribute(id uint8) (name string, critical bool) {
	if def, ok := attributeDefs[id]; ok {
		return def.name, def.critical
	}
	return unknownAttributeName, false
}
